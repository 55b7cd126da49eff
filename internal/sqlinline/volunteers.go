package sqlinline

const QInsertVolunteer = `--sql 3492ec53-c2cb-4531-9ce5-7e3c72c6d086
insert into volunteers (id, name, contact, role, availability, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::text, now())
returning id;
`

const QListVolunteers = `--sql c7fee854-195f-4ef6-9c5d-adcdbddaf228
select id, name, contact, role, availability, created_at
from volunteers
order by created_at desc;
`

const QDeleteVolunteer = `--sql f3646e86-d27d-4872-8a47-28bb59c3efe5
delete from volunteers
where id = $1::uuid;
`
